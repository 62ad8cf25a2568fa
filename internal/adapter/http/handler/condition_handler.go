package handler

import (
	"tokengated-music/internal/adapter/http/dto"
	"tokengated-music/internal/core/domain"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/response"

	"github.com/gin-gonic/gin"
)

// ValidateCondition handles POST /api/v1/conditions/validate. It runs the
// condition builder without touching the network.
func ValidateCondition(c *gin.Context) {
	var req dto.ConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	cond, err := domain.BuildCondition(req.Form())
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, dto.ConditionResponse{Form: cond.Form(), Spec: cond.Spec()})
}
