package registration

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/dto"
	"ppdb/middleware"
	"ppdb/services"
)

const MsgInvalidForm = "Invalid form data"

func RegistrationController(router gin.IRouter, regs *services.RegistrationService) {
	routes := router.Group("/api/registration")
	{
		routes.POST("", func(c *gin.Context) {
			SubmitRegistration(c, regs)
		})
		routes.GET("/mine", middleware.RequireAuth(), func(c *gin.Context) {
			MyRegistrations(c, regs)
		})
	}
}

// SubmitRegistration accepts the public multipart form. Uploaded files are
// not stored; only their names are recorded.
func SubmitRegistration(c *gin.Context, regs *services.RegistrationService) {
	var form dto.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		apierror.RespondAs(c, apierror.Validation(MsgInvalidForm), "error")
		return
	}

	docs := dto.RegistrationDocuments{
		KK:      uploadedName(c, "dokumenKK"),
		Ijazah:  uploadedName(c, "dokumenIjazah"),
		SKHUN:   uploadedName(c, "dokumenSKHUN"),
		PasFoto: uploadedName(c, "dokumenFoto"),
	}

	r, err := regs.Submit(c.Request.Context(), form, docs)
	if err != nil {
		apierror.RespondAs(c, err, "error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": r.ID})
}

func MyRegistrations(c *gin.Context, regs *services.RegistrationService) {
	sess := middleware.GetSession(c)
	list, err := regs.ListMine(c.Request.Context(), sess.Email)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.NewRegistrationResponses(list)})
}

func uploadedName(c *gin.Context, field string) string {
	fh, err := c.FormFile(field)
	if err != nil {
		return ""
	}
	return baseName(fh.Filename)
}

// baseName strips any client-side directory, including Windows paths.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(name)
}
