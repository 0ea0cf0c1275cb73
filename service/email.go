package service

import (
	"fmt"
	"html"
	"strings"

	"fintrack/config"
	"fintrack/models"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg    *config.EmailConfig
	sender func(m *gomail.Message) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.sender = s.dialAndSend
	return s
}

// NotifyBadges 发送获得新徽章的通知邮件
func (s *EmailService) NotifyBadges(user models.User, earned []models.Badge) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}
	if user.Email == "" || len(earned) == 0 {
		return nil
	}

	subject := fmt.Sprintf("【FinTrack】恭喜获得 %d 枚新徽章", len(earned))
	body := s.generateBadgeEmailBody(user.Username, earned)

	return s.sendEmail(user.Email, subject, body)
}

// generateBadgeEmailBody 生成徽章通知邮件内容
func (s *EmailService) generateBadgeEmailBody(username string, earned []models.Badge) string {
	var items strings.Builder
	for _, b := range earned {
		fmt.Fprintf(&items, `
                <li><span class="icon">%s</span> <strong>%s</strong><br><span class="desc">%s</span></li>`,
			html.EscapeString(b.Icon), html.EscapeString(b.Name), html.EscapeString(b.Description))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #f59e0b, #d97706); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        ul { list-style: none; padding: 0; }
        li { padding: 12px 0; border-bottom: 1px solid #eee; }
        .icon { font-size: 22px; }
        .desc { color: #6c757d; font-size: 13px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏆 FinTrack</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>恭喜您获得以下新徽章：</p>
            <ul>%s
            </ul>
            <p>继续坚持记账，解锁更多成就！</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(username), items.String())
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.sender(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

func (s *EmailService) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
