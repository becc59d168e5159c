package remote

type EmptyRequest struct {
}

type EmptyResponse struct {
}

type ReadRequest struct {
	Start int
	Count int
}

type WriteRequest struct {
	Start int
	Data  []byte
}
