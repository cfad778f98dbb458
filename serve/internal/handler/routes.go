package handler

import (
	"net/http"

	"github.com/HuXin0817/blokus-duo/serve/internal/logic"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/HuXin0817/blokus-duo/serve/internal/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	api := router.Group("/api")
	api.POST("/placement", postPlacementHandler(svcCtx))
	api.POST("/anchors", inquireAnchorsHandler(svcCtx))
	api.POST("/placements", inquirePlacementsHandler(svcCtx))
}

func postPlacementHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlacementRequest
		if !bindRequest(c, &req) {
			return
		}

		l := logic.NewPostPlacementLogic(c.Request.Context(), svcCtx)
		resp, err := l.PostPlacement(&req)
		writeResponse(c, resp, err)
	}
}

func inquireAnchorsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AnchorsRequest
		if !bindRequest(c, &req) {
			return
		}

		l := logic.NewInquireAnchorsLogic(c.Request.Context(), svcCtx)
		resp, err := l.InquireAnchors(&req)
		writeResponse(c, resp, err)
	}
}

func inquirePlacementsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlacementsRequest
		if !bindRequest(c, &req) {
			return
		}

		l := logic.NewInquirePlacementsLogic(c.Request.Context(), svcCtx)
		resp, err := l.InquirePlacements(&req)
		writeResponse(c, resp, err)
	}
}

func bindRequest(c *gin.Context, req any) bool {
	body, err := c.GetRawData()
	if err == nil {
		err = sonic.Unmarshal(body, req)
	}

	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

func writeResponse(c *gin.Context, resp any, err error) {
	if err != nil {
		logx.WithContext(c.Request.Context()).Error(err)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	body, err := sonic.Marshal(resp)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
