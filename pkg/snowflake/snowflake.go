package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// 节点号取自 NODE_ID，多实例部署时需各不相同
func init() {
	id, err := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64)
	if err != nil || id < 0 || id > 1023 {
		id = 1
	}
	node, _ = snowflake.NewNode(id)
}

// GenID 生成笔记、帖子、评论 ID
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
