package middleware

import (
	"user_center/be/biz/middleware/accesslog"
	"user_center/be/biz/middleware/cors"
	"user_center/be/biz/middleware/ratelimit"
	"user_center/be/biz/middleware/recovery"
	"user_center/be/biz/middleware/session"
	"user_center/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // request trace id
		accesslog.New(), // access logging
		cors.New(),      // cross origin
		session.New(),   // session store
		ratelimit.New(), // throttling
	}
}
