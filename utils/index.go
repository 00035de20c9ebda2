package utils

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)

	if elapsed <= 5*time.Millisecond {
		return
	}

	log.Printf("%s ~TOOK~ %s", name, elapsed.Round(time.Millisecond))
}

func GenerateRandomString(length int) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[seededRand.Intn(len(Alphabet))]
	}

	return string(b)
}

// ParsePagination reads page/limit query parameters and converts them to a
// limit/offset pair. Limits are clamped to [1, 100].
func ParsePagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit, (page - 1) * limit
}
