package helper

import (
	"context"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadPoster pushes a movie poster to cloudinary and returns its URL.
func UploadPoster(ctx context.Context, file *multipart.FileHeader, publicId string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	cld := InitCloudinary()
	res, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID: publicId,
		Folder:   "posters",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
