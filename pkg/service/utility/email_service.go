/*
 * @Description: 账户相关业务邮件的渲染与发送
 * @Author: 安知鱼
 * @Date: 2025-06-20 15:17:47
 * @LastEditTime: 2025-08-30 23:30:55
 * @LastEditors: 安知鱼
 */
package utility

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/qingyu-admin/pkg/constant"
	"github.com/anzhiyu-c/qingyu-admin/pkg/service/setting"
)

// EmailService 定义了发送业务邮件的接口
type EmailService interface {
	// SendWelcomeEmail 发送带确认链接的欢迎邮件
	SendWelcomeEmail(ctx context.Context, toEmail, username, userID, sign string) error
	// SendEmailChangeEmail 向待确认的新邮箱发送确认邮件
	SendEmailChangeEmail(ctx context.Context, newEmail, username, userID, sign string) error
	// SendPasswordResetEmail 发送密码重置邮件
	SendPasswordResetEmail(ctx context.Context, toEmail, username, userID, sign string) error
}

// 邮件正文模板，正文措辞面向最终用户
const (
	welcomeEmailTpl = `<!DOCTYPE html><html><head><title>Welcome, {{.Username}}!</title></head><body><p>Hello {{.Username}},</p><p>Thank you for registering. Before you can sign in, you need to confirm your account by clicking the following link: <a href="{{.Link}}">confirm account</a></p><p>Regards,</p><p>{{.AppName}}</p></body></html>`

	changeEmailTpl = `<!DOCTYPE html><html><head><title>Confirm your new email address, {{.Username}}!</title></head><body><p>Hello {{.Username}},</p><p>Before you can sign in using your new email address, you need to confirm it by clicking the following link: <a href="{{.Link}}">confirm account</a></p><p>Regards,</p><p>{{.AppName}}</p></body></html>`

	resetPasswordTpl = `<!DOCTYPE html><html><head><title>Password Reset Request</title></head><body><p>Hello {{.Username}},</p><p>We received a request to reset your password. If this was you, you can reset your password by clicking the following link: <a href="{{.Link}}">reset password</a></p><p>If this was not you, delete this email. The reset code will expire in 30 minutes and your account details will not be changed.</p><p>Regards,</p><p>{{.AppName}}</p></body></html>`
)

// emailService 是 EmailService 接口的实现
type emailService struct {
	settingSvc setting.SettingService
}

// NewEmailService 是 emailService 的构造函数
func NewEmailService(settingSvc setting.SettingService) EmailService {
	return &emailService{settingSvc: settingSvc}
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	appName := s.settingSvc.Get(constant.KeyAppName.String())
	link := fmt.Sprintf("%s/account/confirm?userId=%s&code=%s",
		s.siteURL(), url.QueryEscape(userID), url.QueryEscape(sign))

	body, err := renderTemplate(welcomeEmailTpl, map[string]string{
		"Username": username,
		"AppName":  appName,
		"Link":     link,
	})
	if err != nil {
		return fmt.Errorf("渲染欢迎邮件失败: %w", err)
	}

	subject := fmt.Sprintf("Welcome to %s", appName)
	go func() { _ = s.send(toEmail, subject, body) }()
	return nil
}

func (s *emailService) SendEmailChangeEmail(ctx context.Context, newEmail, username, userID, sign string) error {
	appName := s.settingSvc.Get(constant.KeyAppName.String())
	link := fmt.Sprintf("%s/dashboard/my-account/email/confirm?userId=%s&email=%s&code=%s",
		s.siteURL(), url.QueryEscape(userID), url.QueryEscape(newEmail), url.QueryEscape(sign))

	body, err := renderTemplate(changeEmailTpl, map[string]string{
		"Username": username,
		"AppName":  appName,
		"Link":     link,
	})
	if err != nil {
		return fmt.Errorf("渲染邮箱变更确认邮件失败: %w", err)
	}

	subject := fmt.Sprintf("Confirm your new email address, %s", username)
	go func() { _ = s.send(newEmail, subject, body) }()
	return nil
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, toEmail, username, userID, sign string) error {
	appName := s.settingSvc.Get(constant.KeyAppName.String())
	link := fmt.Sprintf("%s/account/reset-password?userId=%s&code=%s",
		s.siteURL(), url.QueryEscape(userID), url.QueryEscape(sign))

	body, err := renderTemplate(resetPasswordTpl, map[string]string{
		"Username": username,
		"AppName":  appName,
		"Link":     link,
	})
	if err != nil {
		return fmt.Errorf("渲染密码重置邮件失败: %w", err)
	}

	go func() { _ = s.send(toEmail, "Password Reset Request", body) }()
	return nil
}

// siteURL 返回规整后的站点地址，配置缺失时使用本地默认值。
func (s *emailService) siteURL() string {
	siteURL := s.settingSvc.Get(constant.KeySiteURL.String())
	if siteURL == "" || siteURL == "https://" || siteURL == "http://" {
		log.Printf("[WARNING] 站点URL未正确配置（当前值: %s），使用默认值 http://localhost:8091", siteURL)
		siteURL = "http://localhost:8091"
	}
	return strings.TrimRight(siteURL, "/")
}

// renderTemplate 渲染 HTML 邮件模板
func renderTemplate(tplStr string, data any) (string, error) {
	tpl, err := template.New("email").Parse(tplStr)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// send 通过 SMTP 投递一封 HTML 邮件
func (s *emailService) send(to, subject, body string) error {
	host := s.settingSvc.Get(constant.KeySMTPHost.String())
	portStr := s.settingSvc.Get(constant.KeySMTPPort.String())
	username := s.settingSvc.Get(constant.KeySMTPUser.String())
	password := s.settingSvc.Get(constant.KeySMTPPass.String())
	senderName := s.settingSvc.Get(constant.KeySMTPFromName.String())
	senderEmail := s.settingSvc.Get(constant.KeySMTPFromEmail.String())

	if host == "" || senderEmail == "" {
		log.Printf("[WARNING] SMTP 未配置，跳过发送给 %s 的邮件（主题: %s）", to, subject)
		return nil
	}

	// 验证端口配置是否为数字
	if _, err := strconv.Atoi(portStr); err != nil {
		msg := fmt.Sprintf("SMTP端口配置无效 '%s'", portStr)
		log.Printf("错误: %s: %v", msg, err)
		return fmt.Errorf("%s: %w", msg, err)
	}

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", senderName, senderEmail)
	headers["To"] = to
	headers["Subject"] = subject
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var messageBuilder strings.Builder
	for k, v := range headers {
		messageBuilder.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	messageBuilder.WriteString("\r\n")
	messageBuilder.WriteString(body)
	message := []byte(messageBuilder.String())

	auth := smtp.PlainAuth("", username, password, host)
	addr := net.JoinHostPort(host, portStr)

	// 使用带超时的拨号（15秒超时）
	conn, err := net.DialTimeout("tcp", addr, 15*time.Second)
	if err != nil {
		log.Printf("错误: [SMTP] Dialing failed: %v", err)
		return err
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		log.Printf("错误: [SMTP] 创建SMTP客户端失败: %v", err)
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true,
		}
		if err = c.StartTLS(tlsConfig); err != nil {
			log.Printf("错误: [SMTP] c.StartTLS failed: %v", err)
			return err
		}
	}

	if username != "" {
		if err = c.Auth(auth); err != nil {
			log.Printf("错误: [SMTP] c.Auth failed: %v", err)
			return err
		}
	}

	if err = c.Mail(senderEmail); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(message); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	log.Printf("邮件已发送至 %s（主题: %s）", to, subject)
	return c.Quit()
}
