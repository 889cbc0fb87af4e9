// Package pam implements the client side of PAM-style authentication
// conversations.
//
// The authentication backend drives a conversation by asking questions
// (echoed text, masked secrets, yes/no prompts, binary exchanges) and
// emitting info/error messages. Applications supply answers through a
// ConversationHandler; the non-interactive Conversation implementation
// answers from preset credentials and records the message transcript.
//
// Failures are reported as ErrorWith values carrying the backend status
// code, an optional message and, when a failing call consumed a resource
// the caller needs back, the resource itself as a payload.
package pam

// ReturnCode is a PAM status code.
//
// The values match the Linux-PAM return codes. ReturnCode implements the
// error interface so that individual codes (most notably ConvErr) can be
// returned directly from conversation handlers.
type ReturnCode int

const (
	Success ReturnCode = iota
	OpenErr
	SymbolErr
	ServiceErr
	SystemErr
	BufErr
	PermDenied
	AuthErr
	CredInsufficient
	AuthInfoUnavail
	UserUnknown
	MaxTries
	NewAuthTokReqd
	AcctExpired
	SessionErr
	CredUnavail
	CredExpired
	CredErr
	NoModuleData
	ConvErr
	AuthTokErr
	AuthTokRecoveryErr
	AuthTokLockBusy
	AuthTokDisableAging
	TryAgain
	Ignore
	Abort
	AuthTokExpired
	ModuleUnknown
	BadItem
	ConvAgain
	Incomplete
)

var returnCodeNames = map[ReturnCode]string{
	Success:             "PAM_SUCCESS",
	OpenErr:             "PAM_OPEN_ERR",
	SymbolErr:           "PAM_SYMBOL_ERR",
	ServiceErr:          "PAM_SERVICE_ERR",
	SystemErr:           "PAM_SYSTEM_ERR",
	BufErr:              "PAM_BUF_ERR",
	PermDenied:          "PAM_PERM_DENIED",
	AuthErr:             "PAM_AUTH_ERR",
	CredInsufficient:    "PAM_CRED_INSUFFICIENT",
	AuthInfoUnavail:     "PAM_AUTHINFO_UNAVAIL",
	UserUnknown:         "PAM_USER_UNKNOWN",
	MaxTries:            "PAM_MAXTRIES",
	NewAuthTokReqd:      "PAM_NEW_AUTHTOK_REQD",
	AcctExpired:         "PAM_ACCT_EXPIRED",
	SessionErr:          "PAM_SESSION_ERR",
	CredUnavail:         "PAM_CRED_UNAVAIL",
	CredExpired:         "PAM_CRED_EXPIRED",
	CredErr:             "PAM_CRED_ERR",
	NoModuleData:        "PAM_NO_MODULE_DATA",
	ConvErr:             "PAM_CONV_ERR",
	AuthTokErr:          "PAM_AUTHTOK_ERR",
	AuthTokRecoveryErr:  "PAM_AUTHTOK_RECOVERY_ERR",
	AuthTokLockBusy:     "PAM_AUTHTOK_LOCK_BUSY",
	AuthTokDisableAging: "PAM_AUTHTOK_DISABLE_AGING",
	TryAgain:            "PAM_TRY_AGAIN",
	Ignore:              "PAM_IGNORE",
	Abort:               "PAM_ABORT",
	AuthTokExpired:      "PAM_AUTHTOK_EXPIRED",
	ModuleUnknown:       "PAM_MODULE_UNKNOWN",
	BadItem:             "PAM_BAD_ITEM",
	ConvAgain:           "PAM_CONV_AGAIN",
	Incomplete:          "PAM_INCOMPLETE",
}

var returnCodeDescriptions = map[ReturnCode]string{
	Success:             "Success",
	OpenErr:             "Failed to load module",
	SymbolErr:           "Symbol not found",
	ServiceErr:          "Error in service module",
	SystemErr:           "System error",
	BufErr:              "Memory buffer error",
	PermDenied:          "Permission denied",
	AuthErr:             "Authentication failure",
	CredInsufficient:    "Insufficient credentials to access authentication data",
	AuthInfoUnavail:     "Authentication service cannot retrieve authentication info",
	UserUnknown:         "User not known to the underlying authentication module",
	MaxTries:            "Have exhausted maximum number of retries for service",
	NewAuthTokReqd:      "Authentication token is no longer valid; new one required",
	AcctExpired:         "User account has expired",
	SessionErr:          "Cannot make/remove an entry for the specified session",
	CredUnavail:         "Authentication service cannot retrieve user credentials",
	CredExpired:         "User credentials expired",
	CredErr:             "Failure setting user credentials",
	NoModuleData:        "No module specific data is present",
	ConvErr:             "Conversation error",
	AuthTokErr:          "Authentication token manipulation error",
	AuthTokRecoveryErr:  "Authentication information cannot be recovered",
	AuthTokLockBusy:     "Authentication token lock busy",
	AuthTokDisableAging: "Authentication token aging disabled",
	TryAgain:            "Failed preliminary check by password service",
	Ignore:              "The return value should be ignored by PAM dispatch",
	Abort:               "Critical error - immediate abort",
	AuthTokExpired:      "Authentication token expired",
	ModuleUnknown:       "Module is unknown",
	BadItem:             "Bad item passed to pam_*_item()",
	ConvAgain:           "Conversation is waiting for event",
	Incomplete:          "Application needs to call libpam again",
}

// String returns the symbolic Linux-PAM name of the code, e.g.
// "PAM_PERM_DENIED".
func (code ReturnCode) String() string {
	if name, ok := returnCodeNames[code]; ok {
		return name
	}
	return "PAM_UNKNOWN"
}

// Error returns the standard description of the code. A live backend may
// provide a localized message instead, see Handle.StrError.
func (code ReturnCode) Error() string {
	if desc, ok := returnCodeDescriptions[code]; ok {
		return desc
	}
	return "Unknown PAM error"
}

// Handle is the boundary to a live transaction with the authentication
// backend. The conversation core only consumes the backend's status
// message lookup, used at error construction time.
type Handle interface {
	// StrError returns a human-readable description of code, or an empty
	// string if the backend doesn't provide one.
	StrError(code ReturnCode) string
}
