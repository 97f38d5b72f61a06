// file: controllers/user_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/database"
	"github.com/tom-sartori/ChemistryDeathRace-api/models"
	"github.com/tom-sartori/ChemistryDeathRace-api/utils"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err == nil {
		utils.Error(c, 2001, "用户名已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// --- 管理员接口 ---

// GetUserList 查询账号列表
func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var users []models.User
	var total int64

	db := database.DB.Model(&models.User{})
	db.Count(&total)
	db.Order("id asc").Offset((page - 1) * limit).Limit(limit).Find(&users)

	utils.Success(c, "success", gin.H{
		"total": total,
		"users": users,
	})
}

// UpdateUserRole 修改账号角色
func UpdateUserRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的ID")
		return
	}

	var req struct {
		Role models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleContributor {
		utils.Error(c, 1001, "role 取值无效（admin/contributor）")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "User role updated successfully", nil)
}
