package dto

type ImproveTextRequestDTO struct {
	Text        string   `json:"text" binding:"required" example:"this sentense has, errors"`
	ModelName   string   `json:"modelName" example:"Qwen3 0.6b"`
	Temperature *float64 `json:"temperature"`
}

type ImproveTextResponseDTO struct {
	ImprovedText string `json:"improvedText"`
}

type ExtractKeywordsRequestDTO struct {
	Text      string `json:"text" binding:"required" example:"Tell me about #FL Studio and #Ableton Live"`
	ModelName string `json:"modelName" example:"Qwen3 0.6b"`
}

type ExtractKeywordsResponseDTO struct {
	Keywords []string `json:"keywords"`
}
