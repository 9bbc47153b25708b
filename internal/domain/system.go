package domain

import (
	"time"
)

// SysOprLog operator audit trail
type SysOprLog struct {
	ID        int64     `json:"id,string"`
	OprName   string    `json:"opr_name"`
	OprIp     string    `json:"opr_ip"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

// TableName Specify table name
func (SysOprLog) TableName() string {
	return "sys_opr_log"
}

// TopicOprLog is the event bus topic carrying SysOprLog entries
const TopicOprLog = "sys:opr_log"
