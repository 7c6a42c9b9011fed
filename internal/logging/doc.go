// Package logging provides the Logger interface used by lintbubble and lintbench.
// ZerologAdapter writes JSON lines tagged with a component and run id;
// StdLoggerAdapter writes plain prefixed lines through the standard log package.
package logging
