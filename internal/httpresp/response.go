package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OperationResult é o contrato devolvido pelas operações de
// agendamento: sucesso carrega o appointment, conflito de horário
// tem flag dedicada para a UI mostrar "horário ocupado, atualize".
type OperationResult struct {
	Success     bool   `json:"success"`
	Appointment any    `json:"appointment,omitempty"`
	Conflict    bool   `json:"conflict,omitempty"`
	Error       string `json:"error,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Created(c *gin.Context, appointment any) {
	c.JSON(http.StatusCreated, OperationResult{
		Success:     true,
		Appointment: appointment,
	})
}

func Updated(c *gin.Context, appointment any) {
	c.JSON(http.StatusOK, OperationResult{
		Success:     true,
		Appointment: appointment,
	})
}

func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, OperationResult{Success: true})
}

func Conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, OperationResult{
		Success:  false,
		Conflict: true,
		Error:    "scheduling_conflict",
	})
}

func Fail(c *gin.Context, status int, code string) {
	c.JSON(status, OperationResult{
		Success: false,
		Error:   code,
	})
}
