package controllers

import (
	"github.com/fsdevblog/tinylinks/internal/config"
	"github.com/fsdevblog/tinylinks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	LinkService LinkStore
	UserService UserStore
	Sessions    *middlewares.SessionManager
	AppConf     *config.Config
	Logger      *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())
	r.Use(params.Sessions.Middleware())

	links := NewLinksController(params.LinkService, params.Sessions, params.AppConf.BaseURL)
	sessions := NewSessionsController(params.UserService, params.Sessions)

	r.GET("/u/:shortCode", links.Redirect)

	api := r.Group("/api")
	api.POST("/register", sessions.Register)
	api.POST("/login", sessions.Login)
	api.POST("/logout", sessions.Logout)

	api.POST("/links", links.CreateLink)
	api.GET("/links", links.ListLinks)
	api.GET("/links/:shortCode", links.GetLink)
	api.PATCH("/links/:shortCode", links.UpdateLink)
	api.DELETE("/links/:shortCode", links.DeleteLink)
	return r
}
