package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	transactionHandler transactionHandler
	creditHandler      carbonCreditHandler
	mrvHandler         mrvDataHandler
	communityHandler   communityHandler
	analyticsHandler   analyticsHandler
}

// ErrorResponse is the uniform error body shape of every failure
type ErrorResponse struct {
	Error string `json:"error"`
}
