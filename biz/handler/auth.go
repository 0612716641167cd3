package handler

import (
	"context"
	"net/http"

	"user_center/be/biz/middleware/auth"
	"user_center/be/biz/middleware/jwt"
	"user_center/be/biz/middleware/session"
	"user_center/be/biz/model/convert"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/service/account"
	"user_center/be/biz/util/resp"
	"user_center/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/sessions"
)

// Register creates an account and signs the caller in.
//
//	@Tags			auth
//	@Summary		register a new account
//	@Description	creates an account and signs the caller in
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.RegisterResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/auth/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if err := bindReq(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bind register req err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().Register(ctx, req.Name, req.Email, req.Tel, req.Password, domain.Role(req.Role))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	token, expAt, ok := issueSession(ctx, c, u)
	if !ok {
		return
	}

	resp.SuccessResp(c, dto.RegisterResp{
		User:      convert.UserDomainToResp(u),
		Token:     token,
		ExpiresAt: expAt,
	})
}

// Login verifies credentials and opens a session.
//
//	@Tags			auth
//	@Summary		sign in with email and password
//	@Description	verifies credentials and returns a session token
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.LoginResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/auth/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := bindReq(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bind login req err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().Login(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	token, expAt, ok := issueSession(ctx, c, u)
	if !ok {
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		User:      convert.UserDomainToResp(u),
		Token:     token,
		ExpiresAt: expAt,
	})
}

// Logout expires the token cookie.
//
//	@Tags			auth
//	@Summary		sign out
//	@Description	expires the token cookie; succeeds with or without a live session
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.LogoutResp}
//	@Header			200	{string}	set-cookie	"cookie"
//	@Router			/auth/logout [GET]
func Logout(ctx context.Context, c *app.RequestContext) {
	jwt.ClearTokenCookie(c)
	if err := session.Remove(c); err != nil {
		hlog.CtxErrorf(ctx, "session remove err: %v", err)
	}

	resp.SuccessResp(c, dto.LogoutResp{})
}

// GetMe returns the record behind the presented token.
//
//	@Tags			auth
//	@Summary		current account
//	@Description	returns the record behind the presented token
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.GetMeResp}
//	@Router			/auth/me [GET]
func GetMe(ctx context.Context, c *app.RequestContext) {
	u := auth.Identity(ctx)
	if u == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	resp.SuccessResp(c, dto.GetMeResp{User: convert.UserDomainToResp(u)})
}

// ListUsers returns every account. Admin only.
//
//	@Tags			auth
//	@Summary		list all accounts
//	@Description	admin only
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.ListUsersResp}
//	@Router			/auth [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, bizErr := account.NewDefault().List(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	list := make([]dto.UserResp, 0, len(users))
	for _, u := range users {
		list = append(list, convert.UserDomainToResp(u))
	}

	resp.SuccessResp(c, dto.ListUsersResp{Count: len(list), Users: list})
}

// GetUser fetches one account by id.
//
//	@Tags			auth
//	@Summary		fetch one account by id
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	dto.CommonResp{data=dto.GetUserResp}
//	@Router			/auth/{id} [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")
	if userID == "" {
		resp.AbortWithErr(c, errs.ParamError.SetMsg("id is required"), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().GetByUserID(ctx, userID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.GetUserResp{User: convert.UserDomainToResp(u)})
}

// UpdateUser applies a partial patch to an account.
//
//	@Tags			auth
//	@Summary		patch an account
//	@Description	owner or admin; role changes are admin only
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string				true	"user id"
//	@Param			req	body		dto.UpdateUserReq	true	"fields to change"
//	@Success		200	{object}	dto.CommonResp{data=dto.UpdateUserResp}
//	@Router			/auth/{id} [PUT]
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")
	if userID == "" {
		resp.AbortWithErr(c, errs.ParamError.SetMsg("id is required"), http.StatusBadRequest)
		return
	}

	var req dto.UpdateUserReq
	if err := bindReq(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bind update req err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	patch := domain.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Tel:      req.Tel,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	if patch.Empty() {
		resp.AbortWithErr(c, errs.ParamError.SetMsg("nothing to update"), http.StatusBadRequest)
		return
	}

	u, bizErr := account.NewDefault().Update(ctx, userID, patch, auth.Identity(ctx))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.UpdateUserResp{User: convert.UserDomainToResp(u)})
}

// RemoveUser deletes an account.
//
//	@Tags			auth
//	@Summary		delete an account
//	@Description	owner or admin
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	dto.CommonResp{data=dto.RemoveUserResp}
//	@Router			/auth/{id} [DELETE]
func RemoveUser(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("id")
	if userID == "" {
		resp.AbortWithErr(c, errs.ParamError.SetMsg("id is required"), http.StatusBadRequest)
		return
	}

	if bizErr := account.NewDefault().Remove(ctx, userID, auth.Identity(ctx)); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.RemoveUserResp{})
}

func bindReq(c *app.RequestContext, obj any) error {
	if err := c.Bind(obj); err != nil {
		return err
	}
	return validate.Struct(obj)
}

// issueSession mints the token, sets the cookie and mirrors the identity
// into the server session. Writes the failure response itself.
func issueSession(ctx context.Context, c *app.RequestContext, u *domain.User) (string, int64, bool) {
	token, expAt, err := jwt.GenerateToken(ctx, u.UserID)
	if err != nil {
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return "", 0, false
	}
	jwt.SetTokenCookie(c, token, expAt)

	sess := sessions.Default(c)
	sess.Set("user_id", u.UserID)
	sess.Set("email", u.Email)
	if err := sess.Save(); err != nil {
		hlog.CtxErrorf(ctx, "sess.Save err: %v", err)
	}

	return token, expAt, true
}
