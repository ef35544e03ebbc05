package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
)

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to write Excel file", "error": err.Error()})
	}
}

// ExportOrdersToExcel handles GET /admin/export/orders.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch orders", "error": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to create Excel sheet", "error": err.Error()})
			return
		}

		headers := []string{"Ref", "Name", "Mobile", "InquiryType", "Status", "Items", "Total", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.Ref)
			row.AddCell().SetValue(o.Name)
			row.AddCell().SetValue(o.Mobile)
			row.AddCell().SetValue(o.InquiryType)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(itemSummary(o.Items))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		writeWorkbook(c, file, "orders.xlsx")
	}
}

func itemSummary(items []models.OrderItem) string {
	summary := ""
	for i, item := range items {
		if i > 0 {
			summary += "; "
		}
		summary += item.Title
		if item.DurationLabel != "" {
			summary += " (" + item.DurationLabel + ")"
		}
	}
	return summary
}

// ExportInquiriesToExcel handles GET /admin/export/inquiries.
func ExportInquiriesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiries []models.Inquiry
		if err := db.Order("created_at DESC").Find(&inquiries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to fetch inquiries", "error": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inquiries")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Failed to create Excel sheet", "error": err.Error()})
			return
		}

		headers := []string{"ID", "Name", "Mobile", "Type", "Description", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, q := range inquiries {
			row := sheet.AddRow()
			row.AddCell().SetValue(q.ID)
			row.AddCell().SetValue(q.Name)
			row.AddCell().SetValue(q.Mobile)
			row.AddCell().SetValue(q.Type)
			row.AddCell().SetValue(q.Description)
			row.AddCell().SetValue(q.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		writeWorkbook(c, file, "inquiries.xlsx")
	}
}
