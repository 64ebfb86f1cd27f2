package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// epoch is Mon Dec 01 2025 00:00:00.000 WIB.
const epoch int64 = 1764522000000

// maxNode is the largest node id a 10-bit node field holds.
const maxNode int64 = 1<<10 - 1

// Snowflake generates time-ordered numeric IDs, used to tag rendered pages.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & maxNode, nil
}

// NewSnowflake constructs a generator for nodeID. A negative nodeID picks a
// random node, which is fine for a single replica.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		id, err := generateRandomNodeID()
		if err != nil {
			return nil, err
		}
		nodeID = id
	}

	snowflake.Epoch = epoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// FormatID renders an id the way it appears in response meta and logs.
// JSON numbers lose precision above 2^53, so ids travel as strings.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
