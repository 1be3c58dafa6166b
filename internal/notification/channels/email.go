package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"newborn_tracking/internal/global"
)

// SendEmail gửi một email tới toàn bộ danh sách người nhận qua SMTP được cấu hình trong env.
// Nếu SMTP chưa được cấu hình (SMTPHost rỗng) thì trả lỗi để caller tự quyết định log hay bỏ qua.
func SendEmail(recipients []string, template *RenderedTemplate) error {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP chưa được cấu hình")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("danh sách người nhận email rỗng")
	}

	// Format CTAs thành HTML buttons
	ctaHTML := ""
	for _, cta := range template.CTAs {
		ctaHTML += fmt.Sprintf(`<a href="%s" style="display:inline-block;padding:10px 20px;margin:5px;text-decoration:none;border-radius:5px;background-color:#007bff;color:#fff;">%s</a>`,
			cta.Action, cta.Label)
	}

	htmlContent := template.Content
	if ctaHTML != "" {
		htmlContent += "<div style='margin-top:20px;'>" + ctaHTML + "</div>"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.SMTPFrom)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", template.Subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// SendVerificationEmail gửi email chứa token xác thực tài khoản.
func SendVerificationEmail(recipient string, name string, token string) error {
	cfg := global.MongoDB_ServerConfig
	verifyURL := ""
	if cfg != nil {
		verifyURL = fmt.Sprintf("%s/verify-email?email=%s&token=%s", cfg.FrontendURL, recipient, token)
	}
	template := &RenderedTemplate{
		Subject: "Xác thực tài khoản",
		Content: fmt.Sprintf(`<p>Xin chào %s,</p><p>Mã xác thực tài khoản của bạn là: <b>%s</b></p><p>Mã có hiệu lực trong thời gian ngắn, vui lòng xác thực sớm.</p>`, name, token),
		CTAs: []RenderedCTA{
			{Label: "Xác thực tài khoản", Action: verifyURL},
		},
	}
	return SendEmail([]string{recipient}, template)
}
