package be

import (
	"user_center/be/biz/config"
	"user_center/be/biz/handler"
	"user_center/be/biz/middleware"
	"user_center/be/biz/middleware/auth"
	"user_center/be/biz/middleware/ratelimit"
	"user_center/be/biz/middleware/security"
	"user_center/be/biz/model/domain"
	_ "user_center/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// NewEngine builds the Hertz server with the middleware suite and the
// account route table.
func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Address
	if addr == "" {
		addr = ":8080"
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	grp := h.Group("/auth")
	grp.POST("/register", ratelimit.NewRegisterProtection(), handler.Register)
	grp.POST("/login", security.NewLoginProtection(), security.NewLoginSuccessRecorder(), handler.Login)
	grp.GET("/logout", handler.Logout)

	authed := grp.Group("", auth.Authn())
	authed.GET("", auth.RequireRoles(domain.RoleAdmin), handler.ListUsers)
	authed.GET("/me", handler.GetMe)
	authed.GET("/:id", auth.RequireRoles(domain.RoleUser, domain.RoleAdmin), handler.GetUser)
	authed.PUT("/:id", handler.UpdateUser)
	authed.DELETE("/:id", handler.RemoveUser)

	return h
}
