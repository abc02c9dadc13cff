// SPDX-License-Identifier: EPL-2.0

// Package config provides YAML configuration loading and validation for the
// kotorcodec command.
//
// A complete file:
//
//	headers:
//	  sfx_file: ref/streamsounds.wav
//	  vo_file: ref/streamwaves.wav
//	transcode:
//	  temp_dir: /var/tmp
//	  seed: 0
//	  strict_detection: false
//	  atomic_replace: true
//	logging:
//	  level: info
//	  format: json
//	  output: kotorcodec.log
//	metrics:
//	  textfile: /var/lib/node_exporter/kotorcodec.prom
package config
