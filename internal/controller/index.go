package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service": "uxfolio",
		"status":  "ok",
	})
}
