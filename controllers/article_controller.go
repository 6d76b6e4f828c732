package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/services"
	"wedding-backend/utils"
)

type ArticleController struct {
	ArticleSvc ArticleStore
}

func NewArticleController(svc ArticleStore) *ArticleController {
	return &ArticleController{ArticleSvc: svc}
}

func (ctrl *ArticleController) List(c *gin.Context) {
	list, err := ctrl.ArticleSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, "articles", err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *ArticleController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := ctrl.ArticleSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "article detail", err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ctrl *ArticleController) Create(c *gin.Context) {
	var payload services.ArticleInput
	if !bindJSON(c, &payload) {
		return
	}
	id, err := ctrl.ArticleSvc.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "create article", err, "")
		return
	}
	utils.JSONCreated(c, id, "Article created successfully")
}

func (ctrl *ArticleController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload services.ArticleInput
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctrl.ArticleSvc.Update(c.Request.Context(), id, payload); err != nil {
		respondError(c, "update article", err, "Article not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Article updated successfully")
}

func (ctrl *ArticleController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ArticleSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete article", err, "Article not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Article deleted successfully")
}
