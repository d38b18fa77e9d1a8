package server

// uiAnimationsJS drives the page entrance and feedback effects: scroll
// reveals, stat counters, ripples, staggered lists, tilt cards, like bursts,
// toasts and skeleton swaps. Everything degrades to a silent no-op when its
// markup is absent.
const uiAnimationsJS = `
function ensureAnimationStyles() {
  if (document.getElementById('__tailoraAnimationStyles')) return;
  const style = document.createElement('style');
  style.id = '__tailoraAnimationStyles';
  style.textContent = [
    '.animate-on-scroll{opacity:0;transform:translateY(16px);transition:opacity .5s ease,transform .5s ease;}',
    '.animate-on-scroll.animated{opacity:1;transform:none;}',
    '@keyframes tailoraRise{from{opacity:0;transform:translateY(14px);}to{opacity:1;transform:none;}}',
    '.stagger-item{animation:tailoraRise .45s ease both;}',
    '.ripple{position:relative;overflow:hidden;}',
    '@keyframes tailoraRipple{to{transform:scale(2.5);opacity:0;}}',
    '.ripple-circle{position:absolute;border-radius:50%;background:rgba(154,107,79,.25);transform:scale(0);animation:tailoraRipple .6s ease-out;pointer-events:none;}',
    '.tilt-card{transition:transform .12s ease;will-change:transform;}',
    '.like-button{cursor:pointer;}',
    '.like-button.liked{color:#b5544d;}',
    '@keyframes tailoraBurst{to{transform:translate(var(--burst-x),var(--burst-y)) scale(0);opacity:0;}}',
    '.like-particle{position:fixed;width:8px;height:8px;border-radius:50%;pointer-events:none;z-index:3000;animation:tailoraBurst .6s ease-out forwards;}',
    '#tailoraToastHost{position:fixed;top:14px;right:14px;z-index:2600;display:flex;flex-direction:column;gap:8px;max-width:min(420px,92vw);}',
    '@keyframes tailoraToastIn{from{opacity:0;transform:translateX(24px);}to{opacity:1;transform:none;}}',
    '@keyframes tailoraToastOut{to{opacity:0;transform:translateX(24px);}}',
    '.tailora-toast{color:#fff;font-size:13px;line-height:1.3;border-radius:10px;padding:10px 14px;box-shadow:0 12px 28px rgba(43,36,32,.25);animation:tailoraToastIn .25s ease;}',
    '.tailora-toast.toast-error{background:#b5544d;}',
    '.tailora-toast.toast-success{background:#4a7c59;}',
    '.tailora-toast.toast-info{background:#5a6e8c;}',
    '.tailora-toast.toast-exit{animation:tailoraToastOut .25s ease forwards;}',
    '.skeleton{background:linear-gradient(90deg,#f0e7dc 25%,#f8f2ea 50%,#f0e7dc 75%);background-size:200% 100%;animation:tailoraShimmer 1.2s linear infinite;border-radius:8px;min-height:18px;}',
    '@keyframes tailoraShimmer{from{background-position:200% 0;}to{background-position:-200% 0;}}',
  ].join('');
  document.head.appendChild(style);
}

function initScrollReveal() {
  const targets = document.querySelectorAll('.animate-on-scroll:not(.animated)');
  if (!targets.length) return;
  if (!('IntersectionObserver' in window)) {
    targets.forEach((el) => el.classList.add('animated'));
    return;
  }
  const observer = new IntersectionObserver((entries) => {
    entries.forEach((entry) => {
      if (!entry.isIntersecting) return;
      const el = entry.target;
      observer.unobserve(el);
      const delay = Math.max(0, Number(el.dataset.delay || 0));
      setTimeout(() => el.classList.add('animated'), delay);
    });
  }, { threshold: 0.1, rootMargin: '0px 0px -50px 0px' });
  targets.forEach((el) => observer.observe(el));
}

function animateCounter(el) {
  const target = parseInt(String(el.dataset.count || ''), 10);
  if (!Number.isFinite(target)) {
    if (!String(el.textContent || '').trim()) el.textContent = '0';
    return;
  }
  const duration = Math.max(1, Number(el.dataset.duration || 1500));
  const start = performance.now();
  function step(now) {
    const progress = Math.min((now - start) / duration, 1);
    const eased = 1 - Math.pow(2, -10 * progress);
    el.textContent = Math.floor(target * eased).toLocaleString();
    if (progress < 1) {
      requestAnimationFrame(step);
      return;
    }
    el.textContent = target.toLocaleString();
  }
  requestAnimationFrame(step);
}

function initCounters() {
  const targets = document.querySelectorAll('[data-count]:not([data-counted])');
  if (!targets.length) return;
  if (!('IntersectionObserver' in window)) {
    targets.forEach((el) => {
      el.setAttribute('data-counted', 'true');
      animateCounter(el);
    });
    return;
  }
  const observer = new IntersectionObserver((entries) => {
    entries.forEach((entry) => {
      if (!entry.isIntersecting) return;
      const el = entry.target;
      observer.unobserve(el);
      if (el.getAttribute('data-counted')) return;
      el.setAttribute('data-counted', 'true');
      animateCounter(el);
    });
  }, { threshold: 0.1 });
  targets.forEach((el) => observer.observe(el));
}

function initStagger() {
  document.querySelectorAll('[data-stagger]').forEach((container) => {
    Array.from(container.children).forEach((child, i) => {
      child.style.animationDelay = (i * 50) + 'ms';
      child.classList.add('stagger-item');
    });
  });
}

function initTiltCards() {
  document.querySelectorAll('.tilt-card').forEach((card) => {
    if (card.__tailoraTiltBound) return;
    card.__tailoraTiltBound = true;
    card.addEventListener('pointermove', (ev) => {
      const rect = card.getBoundingClientRect();
      const x = ev.clientX - rect.left;
      const y = ev.clientY - rect.top;
      const rotateX = -(y - rect.height / 2) / 20;
      const rotateY = (x - rect.width / 2) / 20;
      card.style.transform = 'perspective(600px) rotateX(' + rotateX + 'deg) rotateY(' + rotateY + 'deg) scale(1.02)';
    });
    card.addEventListener('pointerleave', () => {
      card.style.transform = '';
    });
  });
}

const burstPalette = ['#b5544d', '#c9892e', '#e0b84f', '#4a7c59', '#5a6e8c'];

function spawnLikeBurst(el) {
  if (!el || typeof el.getBoundingClientRect !== 'function') return;
  ensureAnimationStyles();
  const rect = el.getBoundingClientRect();
  const cx = rect.left + rect.width / 2;
  const cy = rect.top + rect.height / 2;
  for (let i = 0; i < 8; i++) {
    const particle = document.createElement('span');
    particle.className = 'like-particle';
    particle.style.background = burstPalette[Math.floor(Math.random() * burstPalette.length)];
    particle.style.left = cx + 'px';
    particle.style.top = cy + 'px';
    const angle = (i / 8) * Math.PI * 2;
    const velocity = 50 + Math.random() * 30;
    particle.style.setProperty('--burst-x', (Math.cos(angle) * velocity) + 'px');
    particle.style.setProperty('--burst-y', (Math.sin(angle) * velocity) + 'px');
    particle.addEventListener('animationend', () => {
      if (particle.parentNode) particle.parentNode.removeChild(particle);
    });
    document.body.appendChild(particle);
  }
}

function toastHost() {
  ensureAnimationStyles();
  let host = document.getElementById('tailoraToastHost');
  if (host) return host;
  host = document.createElement('div');
  host.id = 'tailoraToastHost';
  document.body.appendChild(host);
  return host;
}

function showToast(message, type, duration) {
  const host = toastHost();
  const toast = document.createElement('div');
  const kind = type === 'error' ? 'toast-error' : type === 'success' ? 'toast-success' : 'toast-info';
  toast.className = 'tailora-toast ' + kind;
  toast.textContent = String(message || '');
  host.appendChild(toast);

  const ttl = Number(duration);
  setTimeout(() => {
    toast.classList.add('toast-exit');
    toast.addEventListener('animationend', () => {
      if (toast.parentNode) toast.parentNode.removeChild(toast);
    });
  }, Number.isFinite(ttl) ? Math.max(0, ttl) : 3000);
}

function replaceSkeleton(id, html) {
  const el = document.getElementById(String(id || ''));
  if (!el) return;
  el.style.transition = 'opacity .2s ease';
  el.style.opacity = '0';
  setTimeout(() => {
    el.innerHTML = html;
    el.classList.remove('skeleton');
    el.style.opacity = '1';
  }, 200);
}

document.addEventListener('click', (ev) => {
  const button = ev.target && ev.target.closest && ev.target.closest('.ripple');
  if (!button) return;
  ensureAnimationStyles();
  const rect = button.getBoundingClientRect();
  const size = Math.max(rect.width, rect.height);
  const circle = document.createElement('span');
  circle.className = 'ripple-circle';
  circle.style.width = size + 'px';
  circle.style.height = size + 'px';
  circle.style.left = (ev.clientX - rect.left - size / 2) + 'px';
  circle.style.top = (ev.clientY - rect.top - size / 2) + 'px';
  circle.addEventListener('animationend', () => {
    if (circle.parentNode) circle.parentNode.removeChild(circle);
  });
  button.appendChild(circle);
});

document.addEventListener('click', (ev) => {
  const heart = ev.target && ev.target.closest && ev.target.closest('.like-button');
  if (!heart) return;
  const liked = heart.classList.toggle('liked');
  if (liked) spawnLikeBurst(heart);
});

document.addEventListener('DOMContentLoaded', () => {
  ensureAnimationStyles();
  initScrollReveal();
  initCounters();
  initStagger();
  initTiltCards();
});
`
