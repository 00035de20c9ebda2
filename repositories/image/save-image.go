package ImageRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SaveImage(userID uuid.UUID, input types.ConfirmUploadInput) (types.Image, error) {
	defer utils.TimeTrack(time.Now(), "Image -> Save Image")

	var image types.Image

	query := `
		INSERT INTO images (user_id, url, object_key, filename, alt_text, file_type, size_in_bytes, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *`

	row := r.db.QueryRow(query,
		userID,
		input.URL,
		input.ObjectKey,
		input.Filename,
		input.AltText,
		input.FileType,
		input.SizeInBytes,
		input.Width,
		input.Height,
	)

	err := utils.ScanStructByDBTags(row, &image)
	if err != nil {
		return image, err
	}

	return image, nil
}
