package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON body for every API response. Successful
// responses carry Data plus optional Pagination or Count metadata; failures
// carry Message and, for validation failures, the per-field Errors list.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Count      *int        `json:"count,omitempty"`
}

// Pagination describes the window a list response covers.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func Success(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// SuccessPage writes a paginated collection response.
func SuccessPage(c *gin.Context, status int, data interface{}, p Pagination) {
	c.JSON(status, Envelope{Success: true, Data: data, Pagination: &p})
}

// SuccessCount writes a collection response with an item count.
func SuccessCount(c *gin.Context, status int, data interface{}, count int) {
	c.JSON(status, Envelope{Success: true, Data: data, Count: &count})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// FailDetail writes a failure that carries an underlying error string, used
// for infrastructural problems surfaced as 5xx.
func FailDetail(c *gin.Context, status int, message string, err error) {
	env := Envelope{Success: false, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(status, env)
}

// FailValidation writes a 4xx failure with the ordered per-field messages.
func FailValidation(c *gin.Context, status int, message string, errs []string) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}
