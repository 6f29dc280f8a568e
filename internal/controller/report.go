package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"github.com/pavelmamonov20/furnitura/internal/util"
	"github.com/pavelmamonov20/furnitura/pkg/report"
	"gorm.io/gorm"
)

type ReportController struct {
	*baseController
}

// ExportOrderReport renders the order's installation report to PDF,
// uploads it to object storage and records it as a file of the order.
func (rc ReportController) ExportOrderReport(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	order, err := rc.app.Repository.Order.GetById(ctx, nil, orderId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Order not found", util.GenerateErrorMessages(err), nil)
			return
		}
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get order", util.GenerateErrorMessages(err), nil)
		return
	}

	items := make([]report.Item, 0, len(order.Hardware))
	for _, hw := range order.Hardware {
		items = append(items, report.Item{
			Article:  hw.Component.ArticleNumber,
			Name:     hw.Component.Name,
			Quantity: hw.Quantity,
			X:        hw.XPosition,
			Y:        hw.YPosition,
			Rotation: hw.Rotation,
			Notes:    hw.Notes,
		})
	}

	tempFile, err := util.CreateTemp("report-*.pdf")
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create temp file", util.GenerateErrorMessages(err), nil)
		return
	}
	tempFile.Close()
	defer os.Remove(tempFile.Name())

	reportCfg := &report.Config{FontPath: rc.app.Config.Report.FontPath}
	err = report.Generate(reportCfg, tempFile.Name(), report.Order{
		Name:          order.Name,
		Description:   order.Description,
		WindowWidth:   order.WindowWidth,
		WindowHeight:  order.WindowHeight,
		ProfileSystem: order.ProfileSystem.Name,
	}, items)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate report", util.GenerateErrorMessages(err), nil)
		return
	}

	info, err := util.UploadFileToS3ByPath(tempFile.Name(), &util.FileUploadOptions{
		DirectoryPath: util.GetReportDirectoryPath(orderId),
		UniquePrefix:  true,
		Bucket:        rc.app.Config.Minio.BUCKET,
		S3:            rc.app.S3,
	})
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload report", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := rc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       util.ToReportDirectoryPath(orderId, fmt.Sprintf("%s.pdf", order.Name)),
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
		OrderID:        orderId,
	})
	if err != nil {
		// keep storage consistent with the database
		if removeErr := rc.app.S3.RemoveObject(ctx, info.Bucket, info.Key, minio.RemoveObjectOptions{}); removeErr != nil {
			rc.app.Logger.Errorf("Failed to delete report file after db error: %v", removeErr)
		}
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save report file", util.GenerateErrorMessages(err), nil)
		return
	}

	url, err := file.ToPresignedUrl(ctx, rc.app.S3)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to sign report url", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"file": file, "url": url})
}

func (rc ReportController) GetOrderReports(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	files, err := rc.app.Repository.File.GetByOrderId(ctx, nil, orderId)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list reports", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"files": files})
}

// ServeReport streams a stored report PDF back to the client.
func (rc ReportController) ServeReport(ctx *gin.Context) {
	fileId := ctx.Param("fileId")

	file, err := rc.app.Repository.File.GetById(ctx, nil, fileId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Report not found", util.GenerateErrorMessages(err), nil)
			return
		}
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get report", util.GenerateErrorMessages(err), nil)
		return
	}

	object, err := rc.app.S3.GetObject(ctx, file.BucketName, file.UniqueFileName, minio.GetObjectOptions{})
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get report object", util.GenerateErrorMessages(err), nil)
		return
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to stat report object", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Type", info.ContentType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.ToBaseFilename()))
	io.Copy(ctx.Writer, object)
}

// MergeReports combines several stored reports into one PDF and stores
// the result as a new file.
func (rc ReportController) MergeReports(ctx *gin.Context) {
	type Request struct {
		FileIds []string `json:"fileIds" form:"fileIds" binding:"required,min=2"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	outDir, err := os.MkdirTemp("", "merge-")
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create temp directory", util.GenerateErrorMessages(err), nil)
		return
	}
	defer os.RemoveAll(outDir)

	localFiles := make([]string, 0, len(body.FileIds))
	for i, fileId := range body.FileIds {
		file, err := rc.app.Repository.File.GetById(ctx, nil, fileId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.ResponseFailed(ctx, http.StatusNotFound, "Report not found", util.GenerateErrorMessages(err, "fileIds"), nil)
				return
			}
			rc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get report", util.GenerateErrorMessages(err), nil)
			return
		}

		localPath := fmt.Sprintf("%s/%d.pdf", outDir, i)
		if err := file.DownloadToLocal(ctx, rc.app.S3, localPath); err != nil {
			rc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to download report", util.GenerateErrorMessages(err), nil)
			return
		}
		localFiles = append(localFiles, localPath)
	}

	mergeId, err := util.GenerateNChar(12)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate merge id", util.GenerateErrorMessages(err), nil)
		return
	}

	mergedName := fmt.Sprintf("merged-%s.pdf", mergeId)
	mergedPath := fmt.Sprintf("%s/%s", outDir, mergedName)
	if err := report.Merge(localFiles, mergedPath); err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to merge reports", util.GenerateErrorMessages(err), nil)
		return
	}

	info, err := util.UploadFileToS3ByPath(mergedPath, &util.FileUploadOptions{
		DirectoryPath: "reports/merged",
		Bucket:        rc.app.Config.Minio.BUCKET,
		S3:            rc.app.S3,
	})
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload merged report", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := rc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fmt.Sprintf("reports/merged/%s", mergedName),
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	})
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save merged report", util.GenerateErrorMessages(err), nil)
		return
	}

	url, err := file.ToPresignedUrl(ctx, rc.app.S3)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to sign report url", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"file": file, "url": url})
}
