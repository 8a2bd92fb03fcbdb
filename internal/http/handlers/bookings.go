package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
)

const uploadField = "files"

// POST /api/bookings
// Accepts multipart/form-data (package_id, travel_date, payment_method,
// bus_id, files[]) or a plain JSON body without documents.
func CreateBooking(c *gin.Context) {
	maxBytes := currentSettings().MaxUploadBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	var in models.BookingInput
	if err := c.ShouldBind(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return
	}

	var headers []*multipart.FileHeader
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if form, err := c.MultipartForm(); err == nil {
			headers = form.File[uploadField]
		}
	}
	uploads, closeAll, err := openUploads(headers)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file upload tidak bisa dibaca", err)
		return
	}
	defer closeAll()

	id, err := bookingSvc(c).Create(c.Request.Context(), session(c), in, uploads)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking berhasil dibuat",
		"id":      id,
		"status":  domain.BookingPending,
		"files":   len(uploads),
	})
}

func openUploads(headers []*multipart.FileHeader) ([]services.Upload, func(), error) {
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	out := make([]services.Upload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		out = append(out, services.Upload{Name: h.Filename, Body: f})
	}
	return out, closeAll, nil
}

// GET /api/me/bookings
func MyBookings(c *gin.Context) {
	list, err := bookingSvc(c).ListMine(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/bookings/:id/files (multipart field "file")
func AttachBookingFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, currentSettings().MaxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file wajib diunggah", err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file upload tidak bisa dibaca", err)
		return
	}
	defer f.Close()

	out, err := bookingSvc(c).AttachFile(c.Request.Context(), session(c), id, services.Upload{Name: fh.Filename, Body: f})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GET /api/bookings/:id/files
func ListBookingFiles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := bookingSvc(c).Files(c.Request.Context(), session(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id/voucher
func BookingVoucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, filename, err := bookingSvc(c).Voucher(c.Request.Context(), session(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/admin/bookings
func AdminListBookings(c *gin.Context) {
	list, err := bookingSvc(c).ListAll(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type statusRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force"`
}

// PUT /api/admin/bookings/:id/status
// {"status": "Confirmed"} follows the state machine; "force": true overrides it.
func AdminUpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	to, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := bookingSvc(c)
	if req.Force {
		err = svc.ForceStatus(c.Request.Context(), session(c), id, to)
	} else {
		err = svc.Transition(c.Request.Context(), session(c), id, to)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status booking diperbarui", "id": id, "status": to})
}

// DELETE /api/admin/bookings/:id
func AdminDeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bookingSvc(c).Delete(c.Request.Context(), session(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking dihapus", "id": id})
}
