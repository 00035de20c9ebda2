package ImageRepository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clbasaran/backend-ozmevsim/types"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

func (r *Repository) SelectImages(options types.ImageQueryOptions) ([]types.Image, int, error) {
	defer utils.TimeTrack(time.Now(), "Image -> Select Images")

	var params []any
	whereClause := ""

	if options.UserID != uuid.Nil {
		whereClause = " WHERE user_id = $1"
		params = append(params, options.UserID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM images" + whereClause
	if err := r.db.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("image count query failed: %w", err)
	}

	query := "SELECT * FROM images" + whereClause + " ORDER BY created_at DESC"
	paramCounter := len(params) + 1

	if options.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramCounter)
		params = append(params, options.Limit)
		paramCounter++

		if options.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", paramCounter)
			params = append(params, options.Offset)
		}
	}

	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("image query failed: %w", err)
	}
	defer rows.Close()

	var images []types.Image

	for rows.Next() {
		var image types.Image
		if err := utils.ScanStructByDBTagsForRows(rows, &image); err != nil {
			return nil, 0, fmt.Errorf("error scanning image row: %w", err)
		}
		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating through images: %w", err)
	}

	return images, total, nil
}

func (r *Repository) SelectImageByID(id uuid.UUID) (types.Image, error) {
	defer utils.TimeTrack(time.Now(), "Image -> Select Image By ID")

	var image types.Image

	query := `SELECT * FROM images WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := utils.ScanStructByDBTags(row, &image)
	if err != nil {
		return image, err
	}

	return image, nil
}

func (r *Repository) DeleteImageByID(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Image -> Delete Image By ID")

	query := `DELETE FROM images WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}
