package service

type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

var (
	ErrorInvalidPage        = Err{Code: 40001, Message: "invalid page"}
	ErrorInvalidRowsPerPage = Err{Code: 40002, Message: "invalid rows per page"}
	ErrorInvalidResourceID  = Err{Code: 40003, Message: "invalid resource id"}
)
