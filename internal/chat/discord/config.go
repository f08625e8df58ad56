package discord

// Config holds Discord bot configuration.
type Config struct {
	Token string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
}
