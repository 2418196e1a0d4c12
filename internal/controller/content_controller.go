package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codersden/backend/internal/content"
	"github.com/codersden/backend/internal/dto"
)

// ContentController serves the read-only editorial data.
type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// GetEvents godoc
// @Summary List community events
// @Tags Content
// @Produce json
// @Param type query string false "Filter by event type" Enums(all, class, workshop, hackathon, game-night, interview, networking)
// @Param featured query bool false "Only featured events"
// @Success 200 {object} dto.Response{data=[]content.Event}
// @Router /events [get]
func (c *ContentController) GetEvents(ctx *gin.Context) {
	var events []content.Event
	if ctx.Query("featured") == "true" {
		events = content.FeaturedEvents()
	} else {
		events = content.EventsByType(ctx.Query("type"))
	}
	ctx.JSON(http.StatusOK, dto.OK("Events retrieved successfully", events))
}

// GetPosts godoc
// @Summary List blog posts
// @Tags Content
// @Produce json
// @Param category query string false "Filter by category" Enums(all, tutorial, career, news, technology, community)
// @Param featured query bool false "Only featured posts"
// @Success 200 {object} dto.Response{data=[]content.BlogPost}
// @Router /blog [get]
func (c *ContentController) GetPosts(ctx *gin.Context) {
	var posts []content.BlogPost
	if ctx.Query("featured") == "true" {
		posts = content.FeaturedPosts()
	} else {
		posts = content.PostsByCategory(ctx.Query("category"))
	}
	ctx.JSON(http.StatusOK, dto.OK("Posts retrieved successfully", posts))
}

// GetPost godoc
// @Summary Get one blog post by slug
// @Tags Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.Response{data=content.BlogPost}
// @Failure 404 {object} dto.Response
// @Router /blog/{slug} [get]
func (c *ContentController) GetPost(ctx *gin.Context) {
	post, ok := content.PostBySlug(ctx.Param("slug"))
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.Fail("Post not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Post retrieved successfully", post))
}

// GetMembers godoc
// @Summary List community members
// @Tags Content
// @Produce json
// @Param role query string false "Filter by role" Enums(mentor, member)
// @Success 200 {object} dto.Response{data=[]content.Member}
// @Router /members [get]
func (c *ContentController) GetMembers(ctx *gin.Context) {
	if ctx.Query("role") == "mentor" {
		ctx.JSON(http.StatusOK, dto.OK("Members retrieved successfully", content.Mentors()))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Members retrieved successfully", content.Members()))
}

// GetTestimonials godoc
// @Summary List testimonials
// @Tags Content
// @Produce json
// @Param featured query bool false "Only featured testimonials"
// @Success 200 {object} dto.Response{data=[]content.Testimonial}
// @Router /testimonials [get]
func (c *ContentController) GetTestimonials(ctx *gin.Context) {
	if ctx.Query("featured") == "true" {
		ctx.JSON(http.StatusOK, dto.OK("Testimonials retrieved successfully", content.FeaturedTestimonials()))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Testimonials retrieved successfully", content.Testimonials()))
}

// GetStats godoc
// @Summary Get community stats
// @Tags Content
// @Produce json
// @Success 200 {object} dto.Response{data=content.CommunityStats}
// @Router /stats [get]
func (c *ContentController) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.OK("Stats retrieved successfully", content.Stats()))
}
