package resp

import (
	"net/http"

	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, &dto.CommonResp{
		Success: true,
		Code:    int(errs.Success.Code()),
		Message: errs.Success.Msg(),
		Data:    data,
	})
}

// FailResp writes the error envelope with the status from errs.HTTPStatus.
func FailResp(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	c.JSON(errs.HTTPStatus(bizErr), &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
