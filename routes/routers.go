package routes

import (
	"context"

	"villa/config"
	"villa/controllers"
	"villa/response"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// SetupRoutes khai báo toàn bộ route của ứng dụng
func SetupRoutes(router *gin.Engine, db *gorm.DB, m *melody.Melody) {

	ratePlanController := controllers.NewRatePlanController(db, m)

	router.GET("/room/all", controllers.GetAllRooms)
	router.GET("/room/list", controllers.GetRoomList)
	router.GET("/room/view/:id", controllers.GetRoomDetail)
	router.POST("/room/create", controllers.CreateRoom)
	router.POST("/room/update/:id", controllers.UpdateRoom)
	router.POST("/room/delete/:id", controllers.DeleteRoom)

	router.GET("/settings/add-new-room/dropdowns", controllers.GetRoomDropdowns)
	router.GET("/settings/fetch-amenities", controllers.GetAmenities)

	router.GET("/rate-plan/all", ratePlanController.GetAllRatePlans)
	router.POST("/rate-plan/all", ratePlanController.ListRatePlans)
	router.GET("/rate-plan/view/:id", ratePlanController.GetRatePlanDetail)
	router.POST("/rate-plan/create", ratePlanController.CreateRatePlan)
	router.POST("/rate-plan/update/:id", ratePlanController.UpdateRatePlan)
	router.POST("/rate-plan/change-status", ratePlanController.ChangeRatePlanStatus)
	router.GET("/rate-plan/delete/:id", ratePlanController.DeleteRatePlan)

	router.POST("/rate-plan/wizard/start", controllers.StartRatePlanWizard)
	router.GET("/rate-plan/wizard/:id", controllers.GetRatePlanWizard)
	router.POST("/rate-plan/wizard/:id/update", controllers.UpdateRatePlanWizard)
	router.POST("/rate-plan/wizard/:id/next", controllers.NextRatePlanWizardTab)
	router.POST("/rate-plan/wizard/:id/prev", controllers.PrevRatePlanWizardTab)
	router.POST("/rate-plan/wizard/:id/submit", ratePlanController.SubmitRatePlanWizard)

	router.POST("/upload/room-images", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "Không có file")
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			response.BadRequest(c, "Không có file")
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "Lỗi khi mở file")
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				response.ServerError(c)
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		response.Success(c, "Upload thành công", urls)
	})
}
