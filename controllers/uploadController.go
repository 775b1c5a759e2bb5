package controllers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
)

const (
	maxBillSize       = 5 * 1024 * 1024
	compressThreshold = 1 * 1024 * 1024
	billImageWidth    = 1000
)

var allowedBillExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

var (
	s3Once   sync.Once
	s3Client *minio.Client
)

// billStorageClient returns the S3 client when S3_ENDPOINT is configured,
// nil otherwise. Without it bills land on local disk under ./uploads.
func billStorageClient() *minio.Client {
	s3Once.Do(func() {
		endpoint := os.Getenv("S3_ENDPOINT")
		if endpoint == "" {
			return
		}
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
			Secure: true,
		})
		if err != nil {
			fmt.Printf("Failed to initialize S3 client: %v\n", err)
			return
		}
		s3Client = client
	})
	return s3Client
}

// UploadBill accepts one "bill" file, compresses oversized images, and
// returns the stored path for the expense's billUrl field.
func UploadBill(c *gin.Context) {
	file, err := c.FormFile("bill")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No bill file provided"})
		return
	}
	if file.Size > maxBillSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File size exceeds the 5MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedBillExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported file format: " + ext})
		return
	}

	filename := fmt.Sprintf("bill_%d%s", time.Now().UnixNano(), ext)

	data, err := readBillData(file, ext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if client := billStorageClient(); client != nil {
		objectName := "bills/" + filename
		_, err = client.PutObject(context.Background(), os.Getenv("S3_BUCKET"), objectName,
			bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
				ContentType: file.Header.Get("Content-Type"),
			})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to upload bill"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "filePath": "/" + objectName})
		return
	}

	billDir := "./uploads/bills"
	if err := os.MkdirAll(billDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload directory"})
		return
	}
	fullPath := filepath.Join(billDir, filename)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save bill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "filePath": "/uploads/bills/" + filename})
}

// readBillData reads the upload and re-encodes images above the compress
// threshold as resized JPEGs. PDFs pass through untouched.
func readBillData(file *multipart.FileHeader, ext string) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %v", err)
	}

	if ext == ".pdf" || file.Size <= compressThreshold {
		return data, nil
	}

	var img image.Image
	if ext == ".png" {
		img, err = png.Decode(bytes.NewReader(data))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}

	resized := resize.Resize(billImageWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode compressed image: %v", err)
	}
	return buf.Bytes(), nil
}
