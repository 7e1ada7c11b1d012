// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snehithlal/money-manager/internal/application/adapter"
	domainerror "github.com/snehithlal/money-manager/internal/domain/error"
)

// ForgotPasswordMessage is returned for every accepted forgot-password
// request, whether or not an account exists.
const ForgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.ResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.ResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

// Execute handles the forgot password request. The response is identical for
// known and unknown emails to prevent account enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("forgot password requested for unknown email")
		return &ForgotPasswordOutput{Message: ForgotPasswordMessage}, nil
	}

	token, err := uc.resetTokenService.Generate(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: ForgotPasswordMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, token)

	if uc.emailSender != nil {
		err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      user.Email,
			Subject: "Reset your password",
			HTML:    passwordResetHTML(resetURL),
			Text:    passwordResetText(resetURL),
		})
		if err != nil {
			slog.Error("failed to send password reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("password reset email sent", "userID", user.ID)
		}
	} else {
		slog.Info("password reset token generated (email sender not configured)",
			"userID", user.ID,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: ForgotPasswordMessage}, nil
}

func passwordResetHTML(resetURL string) string {
	return fmt.Sprintf(`<p>We received a request to reset your password.</p>
<p><a href="%s">Reset your password</a></p>
<p>This link expires in 1 hour. If you did not request a reset, you can ignore this email.</p>`, resetURL)
}

func passwordResetText(resetURL string) string {
	return fmt.Sprintf("We received a request to reset your password.\n\nReset it here: %s\n\nThis link expires in 1 hour. If you did not request a reset, you can ignore this email.", resetURL)
}
