// Package mail implements the outbound adapter for the Resend email API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/platform/httpclient"
	"github.com/taskmind/taskmind/internal/ports"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// appURL is where digest emails point their call-to-action link.
const appURL = "https://taskmind.example.com"

// Compile-time interface check.
var _ ports.Mailer = (*ResendClient)(nil)

// ResendClient is the outbound adapter for the Resend transactional email
// API. It implements [ports.Mailer] and owns the Korean digest rendering;
// callers only hand over the recipient and their overdue todos.
type ResendClient struct {
	client *httpclient.Client
	apiKey string
	from   string
	logger *slog.Logger
	now    func() time.Time
}

// NewResendClient creates a ResendClient. from is the sender identity in
// "Name <address>" form.
func NewResendClient(client *httpclient.Client, apiKey, from string, logger *slog.Logger) *ResendClient {
	return &ResendClient{
		client: client,
		apiKey: apiKey,
		from:   from,
		logger: logger,
		now:    time.Now,
	}
}

// HealthChecker returns the underlying instrumented client for readiness
// reporting.
func (c *ResendClient) HealthChecker() ports.HealthChecker {
	return c.client
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendOverdueDigest sends one email listing the recipient's overdue todos
// via POST /emails.
func (c *ResendClient) SendOverdueDigest(ctx context.Context, to, name string, todos []todo.Todo) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: fmt.Sprintf("[긴급] %d개의 중요한 할 일이 지연되었습니다", len(todos)),
		HTML:    renderDigestHTML(name, todos, c.now()),
	})
	if err != nil {
		return fmt.Errorf("marshaling send body: %w", err)
	}

	url := c.client.BaseURL() + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			defer c.closeBody(ctx, resp)
			return sendError(resp)
		}
		return fmt.Errorf("sending digest: %w", err)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return sendError(resp)
	}

	c.logger.InfoContext(ctx, "overdue digest sent",
		slog.Int("todo_count", len(todos)),
	)
	return nil
}

func (c *ResendClient) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func sendError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return fmt.Errorf("send status %d: %s", resp.StatusCode, e.Message)
	}
	return fmt.Errorf("send status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// renderDigestHTML builds the Korean overdue notification body. Todo titles
// are user content and get escaped; everything else is static markup.
func renderDigestHTML(name string, todos []todo.Todo, now time.Time) string {
	var items strings.Builder
	for _, t := range todos {
		due := "기한 없음"
		overdueFor := ""
		if t.DueDate != nil {
			due = assist.KoreanDate(*t.DueDate)
			days := int(now.Sub(*t.DueDate).Hours() / 24)
			overdueFor = fmt.Sprintf(" (%d일 지연)", days)
		}
		fmt.Fprintf(&items, `<li style="margin-bottom: 8px;">
  <strong>%s</strong><br/>
  <span style="color: #666; font-size: 14px;">마감일: %s%s</span>
</li>
`, html.EscapeString(t.Title), due, overdueFor)
	}

	return fmt.Sprintf(`<div style="font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #dc2626;">⚠️ 지연된 중요 할 일 알림</h2>

  <p>안녕하세요, %s님!</p>

  <p>다음 <strong>중요도 높음</strong> 할 일이 마감일로부터 24시간 이상 지연되었습니다:</p>

  <ul style="padding-left: 20px; line-height: 1.8;">
%s  </ul>

  <p style="margin-top: 24px;">
    <a href="%s"
       style="background-color: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold;">
      할 일 관리하러 가기
    </a>
  </p>

  <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

  <p style="color: #999; font-size: 12px;">
    이 알림을 받고 싶지 않으시면 설정에서 이메일 알림을 비활성화하세요.<br/>
    © AI 할 일 관리 서비스
  </p>
</div>`, html.EscapeString(name), items.String(), appURL)
}
