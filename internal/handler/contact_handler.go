package handler

import (
	"net/http"

	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
)

// contactRequest 只接受访客填写的字段，状态和请求元数据由服务端决定
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact 保存访客提交的联系表单
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactRequest
	if !bindJSON(c, &payload, "请填写完整的联系表单") {
		return
	}

	submission, err := a.directory.Contacts.Create(c.Request.Context(), payload.toInput(c))
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "提交成功，我们会尽快回复",
		"submission": submission,
	})
}

// ListContacts 返回全部提交记录，最新的在前
func (a *API) ListContacts(c *gin.Context) {
	submissions, err := a.directory.Contacts.ListAll(c.Request.Context())
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// toInput 附加请求元数据：客户端 IP 与 User-Agent 头，头不存在时为 null，存在时按原样保存
func (r contactRequest) toInput(c *gin.Context) service.CreateContactInput {
	input := service.CreateContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
	if ip := c.ClientIP(); ip != "" {
		input.IPAddress = &ip
	}
	if values := c.Request.Header.Values("User-Agent"); len(values) > 0 {
		userAgent := values[0]
		input.UserAgent = &userAgent
	}
	return input
}
