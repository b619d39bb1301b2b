package config

// Starter environment description written by 'rosbox init'.
//
// Angle-bracket values are placeholder sentinels; resolution refuses to
// proceed while any of them remain.
const Scaffold = `# rosbox environment description.
#
# Fill in every <placeholder> before building. Tier gates which features
# are available: tier 2 unlocks extra_volumes, tier 3 unlocks the
# micro-ROS target kinds.

configuration:
  author_name: <your-name>
  workspace_name: <your-workspace>
  ros2_distro: humble
  tier: 1

  container:
    user: <container-user>
    uid: 1000
    gid: 1000
    password: <container-password>
    run_cmd: /bin/bash

  targets:
    dev:
      kind: ros2-develop
      tag: develop
    deploy:
      kind: ros2-deploy
      tag: deploy

# Rarely edited. Omitted values fall back to built-in defaults.
constants:
  supported:
    ros2_distros: [humble, iron, jazzy, rolling]
  base_images:
    ros2_develop: osrf/ros:{distro}-desktop-full
    ros2_deploy: arm64v8/ros:{distro}-ros-base
    microros: microros/base:{distro}
  dockerfile: Dockerfile.{middleware}
  registry: ghcr.io
`
