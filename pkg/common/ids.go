package common

import (
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	idNode = node
}

// UUIDint64 returns a time ordered snowflake id
func UUIDint64() int64 {
	return idNode.Generate().Int64()
}

// NewID returns a snowflake id in its decimal string form
func NewID() string {
	return idNode.Generate().String()
}

// UUID returns a random v4 uuid string
func UUID() string {
	return uuid.NewString()
}
