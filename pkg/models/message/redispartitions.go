package message

import "fmt"

const partitionNumber = 5

type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Partition %d Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Partition-%d-Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := 0; i < partitionNumber; i++ {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
