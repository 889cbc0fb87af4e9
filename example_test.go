package pam_test

import (
	"fmt"
	"log"

	"github.com/emersion/go-pam"
)

func ExampleRespond() {
	conv := pam.NewConversationWithCredentials("alice", "s3cret")

	// The backend collaborator delivers its questions in batches.
	resps, err := pam.Respond(conv, []pam.Message{
		{Style: pam.MessageStylePromptEchoOn, Text: "login:"},
		{Style: pam.MessageStyleTextInfo, Text: "Last login: yesterday"},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resps[0].Text)
	for info := range conv.Infos() {
		fmt.Println(info)
	}
	// Output:
	// alice
	// Last login: yesterday
}

func ExampleErrorWith_TakePayload() {
	conv := pam.NewConversationWithCredentials("alice", "s3cret")

	// A failing operation that consumed the handler hands it back to the
	// caller through the error payload.
	err := pam.NewErrorWith(nil, pam.Abort, conv)

	recovered := err.TakePayload()
	fmt.Println(recovered.Username)
	fmt.Println(err.TakePayload() == nil)
	// Output:
	// alice
	// true
}
