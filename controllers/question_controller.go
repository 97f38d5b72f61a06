// file: controllers/question_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tom-sartori/ChemistryDeathRace-api/dto"
	"github.com/tom-sartori/ChemistryDeathRace-api/mappers"
	"github.com/tom-sartori/ChemistryDeathRace-api/utils"
)

// CreateQuestion 新增题目，入库前由服务层做结构校验和分类上限检查
func CreateQuestion(c *gin.Context) {
	var req dto.QuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	question := mappers.MapQuestionReqToModel(req)
	if err := questionService.Create(&question); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Question created successfully", question)
}

// GetQuestionList 查询全部题目，按名称排序
func GetQuestionList(c *gin.Context) {
	questions, err := questionService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", questions)
}

// GetQuestionDetail 查询单个题目
func GetQuestionDetail(c *gin.Context) {
	question, err := questionService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", question)
}

// UpdateQuestion 修改题目，同样要通过完整校验
func UpdateQuestion(c *gin.Context) {
	id := c.Param("id")
	if _, err := questionService.Get(id); err != nil {
		handleServiceError(c, err)
		return
	}

	var req dto.QuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	question := mappers.MapQuestionReqToModel(req)
	question.ID = id
	if err := questionService.Update(&question); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Question updated successfully", question)
}

// DeleteQuestion 删除题目。历史对局中指向它的作答会变成悬空引用，
// 统计接口读到时会明确报错而不是吞掉。
func DeleteQuestion(c *gin.Context) {
	if err := questionService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "Question deleted successfully", nil)
}

// GetQuestionsByDifficulty 查询某难度下的全部题目
func GetQuestionsByDifficulty(c *gin.Context) {
	difficulty := decodeParam(c.Param("difficulty"))
	questions, err := questionService.ListByDifficulty(difficulty)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", questions)
}

// GetQuestionsByCategory 查询某难度某分类下的全部题目
func GetQuestionsByCategory(c *gin.Context) {
	difficulty := decodeParam(c.Param("difficulty"))
	category := decodeParam(c.Param("category"))
	questions, err := questionService.ListByDifficultyAndCategory(difficulty, category)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", questions)
}

// GetCategories 查询全部分类
func GetCategories(c *gin.Context) {
	categories, err := questionService.Categories()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", categories)
}

// GetCategoriesByDifficulty 查询某难度下的全部分类
func GetCategoriesByDifficulty(c *gin.Context) {
	difficulty := decodeParam(c.Param("difficulty"))
	categories, err := questionService.CategoriesByDifficulty(difficulty)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", categories)
}

// GetDifficulties 查询全部难度
func GetDifficulties(c *gin.Context) {
	difficulties, err := questionService.Difficulties()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", difficulties)
}

// GetAvailableDifficulties 查询分类已满、可以开局的难度
func GetAvailableDifficulties(c *gin.Context) {
	difficulties, err := questionService.AvailableDifficulties()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", difficulties)
}

// RenameCategory 重命名某难度下的一个分类，作用于所有匹配题目
func RenameCategory(c *gin.Context) {
	var req dto.RenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	difficulty := decodeParam(c.Param("difficulty"))
	oldValue := decodeParam(c.Param("category"))
	if err := questionService.RenameCategory(difficulty, oldValue, req.NewValue); err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := questionService.Categories()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "Category renamed successfully", categories)
}

// RenameDifficulty 重命名一个难度，作用于所有匹配题目
func RenameDifficulty(c *gin.Context) {
	var req dto.RenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	oldValue := decodeParam(c.Param("difficulty"))
	if err := questionService.RenameDifficulty(oldValue, req.NewValue); err != nil {
		handleServiceError(c, err)
		return
	}

	difficulties, err := questionService.Difficulties()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "Difficulty renamed successfully", difficulties)
}
