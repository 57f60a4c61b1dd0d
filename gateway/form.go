package gateway

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/evomarket/evomarket-go/api"
	"github.com/evomarket/evomarket-go/model"
)

// Attachment limits for listing submissions.
const (
	MaxAttachments    = 8
	MaxAttachmentSize = 10 << 20
)

// imageField is the multipart field name the server reads attachments from.
const imageField = "uploaded_images"

// ValidationError reports a form rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Attachment is an image file attached to a listing form.
type Attachment struct {
	Name string
	Data []byte
}

// CreateForm is the full set of fields for a new listing.
type CreateForm struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Subcategory string
	Condition   string
	Location    string
	Images      []Attachment
}

// UpdateForm carries only the fields to change. Nil fields are left
// untouched by the server; a non-empty Images replaces the listing's
// image set.
type UpdateForm struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Subcategory *string
	Condition   *string
	Location    *string
	Images      []Attachment
}

// Create validates the form, then submits it as a multipart request.
func (c *Client) Create(ctx context.Context, form CreateForm) (*model.Product, error) {
	if err := validateCreate(form); err != nil {
		return nil, err
	}

	contentType, body, err := encodeCreate(form)
	if err != nil {
		return nil, fmt.Errorf("encoding listing form: %w", err)
	}

	resp, err := c.api.Multipart(ctx, http.MethodPost, api.PathProductCreate, contentType, body)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &Error{Op: "create product", Status: resp.Status, Message: resp.Message("failed to create product")}
	}

	var product model.Product
	if err := resp.Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update submits a partial edit of an existing listing.
func (c *Client) Update(ctx context.Context, id string, form UpdateForm) (*model.Product, error) {
	if err := validateAttachments(form.Images); err != nil {
		return nil, err
	}
	if form.Price != nil && *form.Price < 0 {
		return nil, &ValidationError{Message: "price must not be negative"}
	}

	contentType, body, err := encodeUpdate(form)
	if err != nil {
		return nil, fmt.Errorf("encoding listing form: %w", err)
	}

	resp, err := c.api.Multipart(ctx, http.MethodPatch, api.PathProductUpdate(id), contentType, body)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &Error{Op: "update product", Status: resp.Status, Message: resp.Message("failed to update product")}
	}

	var product model.Product
	if err := resp.Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func validateCreate(form CreateForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return &ValidationError{Message: "title is required"}
	}
	if form.Price < 0 {
		return &ValidationError{Message: "price must not be negative"}
	}
	if len(form.Images) == 0 {
		return &ValidationError{Message: "at least one image is required"}
	}
	return validateAttachments(form.Images)
}

func validateAttachments(images []Attachment) error {
	if len(images) > MaxAttachments {
		return &ValidationError{Message: fmt.Sprintf("a listing can have at most %d images", MaxAttachments)}
	}
	for _, img := range images {
		if len(img.Data) > MaxAttachmentSize {
			return &ValidationError{
				Message: fmt.Sprintf("image %q is too large (%s, limit %s)",
					img.Name, humanize.IBytes(uint64(len(img.Data))), humanize.IBytes(MaxAttachmentSize)),
			}
		}
		if !strings.HasPrefix(http.DetectContentType(img.Data), "image/") {
			return &ValidationError{Message: fmt.Sprintf("file %q is not an image", img.Name)}
		}
	}
	return nil
}

func encodeCreate(form CreateForm) (contentType string, body []byte, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := [][2]string{
		{"title", form.Title},
		{"description", form.Description},
		{"price", strconv.FormatFloat(form.Price, 'f', -1, 64)},
		{"category", form.Category},
		{"condition", form.Condition},
	}
	if form.Subcategory != "" {
		fields = append(fields, [2]string{"subcategory", form.Subcategory})
	}
	if form.Location != "" {
		fields = append(fields, [2]string{"location", form.Location})
	}

	if err := writeForm(w, fields, form.Images); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

func encodeUpdate(form UpdateForm) (contentType string, body []byte, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	var fields [][2]string
	add := func(name string, value *string) {
		if value != nil {
			fields = append(fields, [2]string{name, *value})
		}
	}
	add("title", form.Title)
	add("description", form.Description)
	if form.Price != nil {
		fields = append(fields, [2]string{"price", strconv.FormatFloat(*form.Price, 'f', -1, 64)})
	}
	add("category", form.Category)
	add("subcategory", form.Subcategory)
	add("condition", form.Condition)
	add("location", form.Location)

	if err := writeForm(w, fields, form.Images); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

func writeForm(w *multipart.Writer, fields [][2]string, images []Attachment) error {
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	for _, img := range images {
		part, err := w.CreateFormFile(imageField, img.Name)
		if err != nil {
			return err
		}
		if _, err := part.Write(img.Data); err != nil {
			return err
		}
	}
	return w.Close()
}
