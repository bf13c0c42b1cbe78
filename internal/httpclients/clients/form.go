package clients

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// FormBody is an encoded multipart/form-data payload.
type FormBody struct {
	contentType string
	data        []byte
}

func (b FormBody) ContentType() string {
	return b.contentType
}

func (b FormBody) Bytes() []byte {
	return b.data
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type formField struct {
	name  string
	value string
}

// EncodeForm writes the client form as multipart/form-data. An empty password is left out
// so an update does not reset it.
func EncodeForm(form entity.ClientForm) (FormBody, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	fields := []formField{
		{entity.FieldClientName, form.ClientName},
		{entity.FieldServiceURL, form.ServiceURL},
		{entity.FieldManagerName, form.ManagerName},
		{entity.FieldManagerEmail, form.ManagerEmail},
		{entity.FieldManagerPhone, form.ManagerPhone},
		{entity.FieldAccountID, form.AccountID},
	}

	if form.AccountPassword != "" {
		fields = append(fields, formField{entity.FieldAccountPassword, form.AccountPassword})
	}

	for _, f := range fields {
		err := w.WriteField(f.name, f.value)
		if err != nil {
			return FormBody{}, fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if form.Logo != nil {
		contentType := form.Logo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(entity.FieldLogo), quoteEscaper.Replace(form.Logo.Name)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return FormBody{}, fmt.Errorf("create logo part: %w", err)
		}

		_, err = part.Write(form.Logo.Data)
		if err != nil {
			return FormBody{}, fmt.Errorf("write logo: %w", err)
		}
	}

	err := w.Close()
	if err != nil {
		return FormBody{}, fmt.Errorf("close multipart writer: %w", err)
	}

	return FormBody{
		contentType: w.FormDataContentType(),
		data:        buf.Bytes(),
	}, nil
}
