package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/util"
)

type NdaController struct {
	*baseController
}

// ValidateNda checks a visitor-supplied code against the static table. An
// expired code is distinguished from an unknown one so the client can say
// "ask for a new code" instead of "typo?".
func (nc NdaController) ValidateNda(ctx *gin.Context) {
	type Request struct {
		Code string `json:"ndaCode" form:"ndaCode" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	result := nc.app.NdaGate.Validate(body.Code)
	if !result.Valid {
		message := "Invalid NDA code"
		if result.Expired {
			message = "NDA code has expired"
		}
		util.ResponseFailed(ctx, http.StatusForbidden, message, nil, gin.H{
			"valid":   false,
			"expired": result.Expired,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"valid":   true,
		"ndaInfo": result.Info,
	})
}
