package model

type CommissionProcessLog struct {
	ID             int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	FileUrl        string `gorm:"size:255;not null" json:"file_url"`
	TotalOperation int64  `gorm:"not null" json:"total_operation"`
	Status         int    `gorm:"not null;index" json:"status"`
	Result         string `gorm:"type:text;not null" json:"result"`
	ErrorMessage   string `gorm:"type:text" json:"error_message,omitempty"`
	CreateTime     int64  `gorm:"not null" json:"create_time"`
	CreateBy       string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime     int64  `gorm:"not null" json:"update_time"`
	UpdateBy       string `gorm:"size:100;not null" json:"update_by"`
}
