package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	PostCreated        string `mapstructure:"postCreated" yaml:"postCreated"`               //  帖子创建主题
	CommentCreated     string `mapstructure:"commentCreated" yaml:"commentCreated"`         //  评论创建主题
	VoteChanged        string `mapstructure:"voteChanged" yaml:"voteChanged"`               //  投票变更主题
	UserProfileChanged string `mapstructure:"userProfileChanged" yaml:"userProfileChanged"` //  用户资料变更主题 (消费)
}
