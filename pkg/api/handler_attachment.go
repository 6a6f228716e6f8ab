package api

import (
	"github.com/gin-gonic/gin"
)

// maxAttachmentSize caps multipart uploads at 512 MiB.
const maxAttachmentSize = 512 << 20

// UploadAttachment handles POST /api/v1/attachments/upload (multipart,
// field name "file").
func (s *Server) UploadAttachment(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, 400, CodeBadRequest, "missing multipart field 'file'")
		return
	}
	if header.Size > maxAttachmentSize {
		respondError(c, 400, CodeBadRequest, "file too large")
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, 400, CodeBadRequest, err.Error())
		return
	}
	defer f.Close()

	file, err := s.attachments.Upload(
		c.Request.Context(),
		currentUserID(c),
		header.Filename,
		f,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, file)
}
