package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/services"
)

const (
	MsgCaptchaDisabled = "Captcha is not configured"
	MsgTokenRequired   = "Token is required"
	MsgCaptchaVerified = "Captcha verified successfully"
)

// CaptchaController mounts the verifier; a nil verifier answers 404.
func CaptchaController(router gin.IRouter, verifier services.CaptchaVerifier) {
	router.POST("/api/auth/captcha", func(c *gin.Context) {
		VerifyCaptcha(c, verifier)
	})
}

func VerifyCaptcha(c *gin.Context, verifier services.CaptchaVerifier) {
	if verifier == nil {
		apierror.Respond(c, apierror.NotFound(MsgCaptchaDisabled))
		return
	}

	var req dto.CaptchaRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	if req.Token == "" {
		apierror.Respond(c, apierror.Validation(MsgTokenRequired))
		return
	}

	result, err := verifier.Verify(c.Request.Context(), req.Token, req.Action, clientIP(c), c.Request.UserAgent())
	if errors.Is(err, services.ErrCaptchaRejected) {
		apierror.Respond(c, apierror.Validation(services.ErrCaptchaRejected.Error()))
		return
	}
	if err != nil {
		apierror.Respond(c, apierror.Internal("verify captcha", err))
		return
	}

	c.JSON(http.StatusOK, dto.CaptchaResponse{
		Success: true,
		Score:   result.Score,
		Action:  result.Action,
		Reasons: result.Reasons,
		Message: MsgCaptchaVerified,
	})
}

// clientIP keeps the first hop when a proxy chain is present.
func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	return ip
}
