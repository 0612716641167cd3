package recovery

import (
	"context"
	"net/http"

	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.CtxErrorf(ctx, "panic recovered: %v\n%s", err, stack)
			c.JSON(http.StatusInternalServerError, dto.CommonResp{
				Success: false,
				Code:    int(errs.ServerError.Code()),
				Message: errs.ServerError.Msg(),
			})
		},
	))
}
