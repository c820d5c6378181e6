package errors

var ErrNotEmpty = &Exception{
	Kind:    KindNotEmpty,
	Message: "Database object must be empty",
}

func NotEmpty(message string) *Exception {
	if message == "" {
		message = ErrNotEmpty.Message
	}
	return &Exception{Kind: KindNotEmpty, Message: message}
}
