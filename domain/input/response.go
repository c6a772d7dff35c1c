package input

import "jerry/domain/session"

// Response is what the client sends back after consuming a Message.
type Response interface {
	isResponse()
}

type CursorResponse struct {
	X, Y int32
}

type InitInfoResponse struct {
	Info session.ClientInfo
}

type ClipboardResponse struct {
	Content  string
	FileList bool
}

// NoResponse tells the server a request was seen but nothing is returned.
type NoResponse struct {
	Reason string
}

func (CursorResponse) isResponse()    {}
func (InitInfoResponse) isResponse()  {}
func (ClipboardResponse) isResponse() {}
func (NoResponse) isResponse()        {}
