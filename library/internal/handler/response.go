package handler

// Response is the envelope of every API answer.
type Response struct {
	Success bool   `json:"sucesso"`
	Data    any    `json:"dados,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"mensagem,omitempty"`
	Error   string `json:"erro,omitempty"`
}

type IndexResponse struct {
	Message   string            `json:"mensagem"`
	Endpoints map[string]string `json:"endpoints"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"mensagem"`
}

func success(data any, msg string) Response {
	return Response{Success: true, Data: data, Message: msg}
}

func list[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	total := len(items)
	return Response{Success: true, Data: items, Total: &total}
}

func failure(msg string) Response {
	return Response{Success: false, Error: msg}
}
