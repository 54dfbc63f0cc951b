package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httpresp"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/storage"
)

// 8 MB é suficiente para qualquer foto de celular.
const maxUploadBytes = 8 << 20

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Image recebe multipart "file" e devolve a URL pública em webp.
// O campo opcional "folder" separa fotos de serviço de avatares.
func (h *UploadHandler) Image(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Write(c, 503, "uploads_disabled", "Upload de imagens não configurado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório no campo 'file'.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem maior que 8MB.")
		return
	}

	folder := c.DefaultPostForm("folder", "services")
	if folder != "services" && folder != "avatars" {
		httperr.BadRequest(c, "invalid_folder", "Pasta deve ser 'services' ou 'avatars'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida ou falha no envio.")
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}
