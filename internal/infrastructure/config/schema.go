package config

// Config is the on-disk configuration.
type Config struct {
	ScrollbackLines int    `mapstructure:"scrollback_lines" toml:"scrollback_lines" json:"scrollback_lines" jsonschema:"minimum=0,description=Lines of scrollback kept per pane"`
	Font            string `mapstructure:"font" toml:"font" json:"font" jsonschema:"description=Font family used by sessions"`
	FontSize        int    `mapstructure:"font_size" toml:"font_size" json:"font_size" jsonschema:"minimum=1,maximum=72,description=Font size in points"`
	// Shell is the program started in new panes. Empty means $SHELL, then /bin/bash.
	Shell      string `mapstructure:"shell" toml:"shell" json:"shell" jsonschema:"description=Program started in new panes; empty uses $SHELL"`
	WorkingDir string `mapstructure:"working_dir" toml:"working_dir" json:"working_dir" jsonschema:"description=Working directory of new panes; empty inherits"`
	// TabTitleTemplate prefixes generated tab titles ("Terminal 1", ...).
	TabTitleTemplate string `mapstructure:"tab_title_template" toml:"tab_title_template" json:"tab_title_template" jsonschema:"description=Prefix of generated tab titles"`
	// TabTitle is the older name of TabTitleTemplate, honored when the new key is absent.
	TabTitle string `mapstructure:"tab_title" toml:"tab_title,omitempty" json:"tab_title,omitempty" jsonschema:"deprecated=true,description=Use tab_title_template"`
	// ThemeFile is resolved against the config directory when relative.
	ThemeFile string `mapstructure:"theme_file" toml:"theme_file" json:"theme_file" jsonschema:"description=TOML theme file; relative paths resolve against the config directory"`

	Layout      LayoutConfig      `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Keybindings map[string]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings" jsonschema:"description=Chord per command, e.g. new_tab = \"alt+shift+t\"; empty unbinds"`
}

// LayoutConfig holds pane and tab bar geometry settings.
type LayoutConfig struct {
	SplitRatio     float64 `mapstructure:"split_ratio" toml:"split_ratio" json:"split_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1,description=Share of a split given to the original pane"`
	TabBarPosition string  `mapstructure:"tab_bar_position" toml:"tab_bar_position" json:"tab_bar_position" jsonschema:"enum=top,enum=bottom"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}
