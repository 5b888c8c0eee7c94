package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminListPosts shows every post, drafts included. This is the one read
// path where a backend failure is surfaced instead of masked: an operator
// needs to know the listing is broken, not see stale fixtures.
func (h *Handler) AdminListPosts(c *gin.Context) {
	posts, err := h.repo.ListPosts(c.Request.Context())

	data := gin.H{"Posts": posts}
	if err != nil {
		data["Error"] = err.Error()
	}
	h.render(c, http.StatusOK, "admin_posts.html", data)
}

// AdminNewPost renders the empty editor form.
func (h *Handler) AdminNewPost(c *gin.Context) {
	h.render(c, http.StatusOK, "editor.html", gin.H{
		"Categories": h.repo.ListCategories(c.Request.Context()),
	})
}

// AdminEditPost renders the editor pre-filled with an existing post.
func (h *Handler) AdminEditPost(c *gin.Context) {
	post := h.repo.GetPostByID(c.Request.Context(), c.Param("id"))
	if post == nil {
		failRedirect(c, "/admin/posts", "Insight not found.")
		return
	}

	h.render(c, http.StatusOK, "editor.html", gin.H{
		"Post":       post,
		"Categories": h.repo.ListCategories(c.Request.Context()),
	})
}

// AdminCreatePost validates the submitted form and creates the post.
// Failures of any kind bounce back to the form with an error message.
func (h *Handler) AdminCreatePost(c *gin.Context) {
	form := normalizePostForm(c)
	if msg := h.validatePostForm(form); msg != "" {
		failRedirect(c, "/admin/posts/new", msg)
		return
	}

	if _, err := h.repo.CreatePost(c.Request.Context(), form.payload()); err != nil {
		failRedirect(c, "/admin/posts/new", err.Error())
		return
	}

	successRedirect(c, "/admin/posts", "Insight created successfully.")
}

// AdminUpdatePost validates the submitted form and updates the post.
func (h *Handler) AdminUpdatePost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		failRedirect(c, "/admin/posts", "Invalid post id.")
		return
	}

	form := normalizePostForm(c)
	if msg := h.validatePostForm(form); msg != "" {
		failRedirect(c, "/admin/posts/"+id+"/edit", msg)
		return
	}

	updated, err := h.repo.UpdatePost(c.Request.Context(), id, form.payload())
	if err != nil {
		failRedirect(c, "/admin/posts/"+id+"/edit", err.Error())
		return
	}
	if updated == nil {
		failRedirect(c, "/admin/posts", "Insight not found.")
		return
	}

	successRedirect(c, "/admin/posts", "Insight updated successfully.")
}

// AdminDeletePost deletes the post. In mock mode deleting an id that no
// longer exists is a silent no-op, so a double-submitted form still lands
// on the success banner.
func (h *Handler) AdminDeletePost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		failRedirect(c, "/admin/posts", "Invalid post id.")
		return
	}

	if err := h.repo.DeletePost(c.Request.Context(), id); err != nil {
		failRedirect(c, "/admin/posts", err.Error())
		return
	}

	successRedirect(c, "/admin/posts", "Insight deleted successfully.")
}
