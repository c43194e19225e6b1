package command

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation failed")
)

const (
	MsgUnknownCommand   = "❌ Unknown command."
	MsgPermissionDenied = "❌ You don't have permission to use this command."
	MsgMissingComment   = "❌ The first comment is required for this command."
	MsgTooManyComments  = "❌ At most 5 comments can be included."
	MsgRenderFailed     = "❌ Failed to prepare the message."
	MsgPostFailed       = "❌ Failed to post the message."
)
