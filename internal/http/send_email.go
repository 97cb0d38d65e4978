package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/jpretorius/email-gateway/internal/dispatcher"
	"github.com/jpretorius/email-gateway/internal/model"
)

type sendReq struct {
	ClientEmail string         `json:"clientEmail"`
	Subject     string         `json:"subject"`
	HTML        string         `json:"html"`
	Department  string         `json:"department"`
	Language    string         `json:"language"`
	Attachment  *attachmentReq `json:"attachment"`
}

type attachmentReq struct {
	Content  string `json:"content"` // base64
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

func sendEmailHandler(gw *dispatcher.Gateway) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req sendReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		msg := model.DispatchMessage{
			Recipient:    req.ClientEmail,
			Subject:      req.Subject,
			HTML:         req.HTML,
			Organization: req.Department,
			Language:     req.Language,
		}
		if req.Attachment != nil {
			raw, err := base64.StdEncoding.DecodeString(req.Attachment.Content)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid attachment encoding"})
			}
			msg.Attachment = &model.Attachment{
				Content:  raw,
				Filename: req.Attachment.Filename,
				MIMEType: req.Attachment.Type,
			}
		}

		res, err := gw.Send(c.Request().Context(), msg)
		if err != nil {
			var mf *dispatcher.MissingFieldsError
			var uo *dispatcher.UnknownOrganizationError
			switch {
			case errors.As(err, &mf):
				return c.JSON(http.StatusBadRequest, map[string]any{
					"error":         "Missing required fields",
					"missingFields": mf.Fields,
				})
			case errors.As(err, &uo):
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "Invalid department",
				})
			case errors.Is(err, dispatcher.ErrNotConfigured):
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error":   "Server configuration error",
					"message": "Email service is not properly configured.",
				})
			default:
				log.Errorf("send failed: %v", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
		}

		if !res.Success {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"success":   false,
				"error":     "Failed to send email",
				"message":   res.Message,
				"timestamp": res.Timestamp.Format(time.RFC3339),
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success":    true,
			"id":         res.ID,
			"message":    res.Message,
			"statusCode": res.StatusCode,
			"timestamp":  res.Timestamp.Format(time.RFC3339),
		})
	}
}
