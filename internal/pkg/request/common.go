package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
// Well-formedness of the id is checked by the service layer so malformed
// values get a dedicated error message.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required"`
}
